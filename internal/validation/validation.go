// Package validation implementa as regras de campo dos payloads de usuário e produto.
//
// As funções são puras: recebem o objeto JSON já decodificado e devolvem o
// payload normalizado ou a lista completa de violações, nunca as duas coisas.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	apperror "gocatalog/internal/errors"
)

// Payload é o corpo JSON decodificado de uma requisição de criação ou atualização.
type Payload = map[string]interface{}

// maxSafeInteger acompanha o maior inteiro representável sem perda em JSON (2^53 - 1).
var maxSafeInteger = decimal.NewFromInt(1<<53 - 1)

// emailPattern aceita local@dominio.tld com rótulos de domínio válidos e TLD alfabético.
var emailPattern = regexp.MustCompile(
	"^[A-Za-z0-9!#$%&'*+/=?^_`{|}~.-]+@" +
		`(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,63}$`,
)

// checker acumula as violações de um payload em uma única passada.
type checker struct {
	payload Payload
	known   map[string]bool
	errs    []apperror.FieldError
}

func newChecker(p Payload, fields ...string) *checker {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}
	return &checker{payload: p, known: known}
}

func (c *checker) add(field, format string, args ...interface{}) {
	c.errs = append(c.errs, apperror.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// lookup devolve o valor bruto do campo; ausente é sinalizado por present=false.
// Um campo obrigatório ausente já é registrado como violação.
func (c *checker) lookup(key, label string, required bool) (interface{}, bool) {
	v, present := c.payload[key]
	if !present {
		if required {
			c.add(key, "O campo %s é obrigatório", label)
		}
		return nil, false
	}
	return v, true
}

// str valida um campo texto com limites de tamanho em caracteres.
func (c *checker) str(key, label string, min, max int, required bool) *string {
	raw, ok := c.lookup(key, label, required)
	if !ok {
		return nil
	}
	s, isString := raw.(string)
	if !isString {
		c.add(key, "O campo %s deve ser um texto", label)
		return nil
	}
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		c.add(key, "O campo %s não pode ser vazio", label)
		return nil
	case n < min:
		c.add(key, "O campo %s deve ter pelo menos %d caracteres", label, min)
		return nil
	case n > max:
		c.add(key, "O campo %s não pode exceder %d caracteres", label, max)
		return nil
	}
	return &s
}

// number converte o valor bruto em decimal. Aceita números JSON e textos numéricos.
func (c *checker) number(key, label string, required bool) (decimal.Decimal, bool) {
	raw, ok := c.lookup(key, label, required)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := toDecimal(raw)
	if err != nil {
		c.add(key, "O campo %s deve ser um número", label)
		return decimal.Decimal{}, false
	}
	if d.Abs().GreaterThan(maxSafeInteger) {
		c.add(key, "O campo %s deve ser um número seguro", label)
		return decimal.Decimal{}, false
	}
	return d, true
}

// integer valida um inteiro dentro de [min, max]; max < min desativa o limite superior.
func (c *checker) integer(key, label string, min, max int64, required bool, minMsg, maxMsg string) *int {
	d, ok := c.number(key, label, required)
	if !ok {
		return nil
	}
	if !d.IsInteger() {
		c.add(key, "O campo %s deve ser um número inteiro", label)
		return nil
	}
	v := d.IntPart()
	if v < min {
		c.add(key, minMsg)
		return nil
	}
	if max >= min && v > max {
		c.add(key, maxMsg)
		return nil
	}
	n := int(v)
	return &n
}

// rejectUnknown registra as chaves fora do schema, em ordem alfabética.
func (c *checker) rejectUnknown() {
	var unknown []string
	for k := range c.payload {
		if !c.known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		c.add(k, "%q não é permitido", k)
	}
}

// requireAny registra violação quando um payload de atualização chega vazio.
func (c *checker) requireAny() {
	if len(c.payload) == 0 {
		c.add("body", "Informe ao menos um campo para atualização")
	}
}

func (c *checker) result() []apperror.FieldError {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func toDecimal(raw interface{}) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("tipo %T não é numérico", raw)
	}
}

func isEmail(s string) bool {
	if !emailPattern.MatchString(s) {
		return false
	}
	local := s[:strings.LastIndex(s, "@")]
	return len(local) <= 64 &&
		!strings.HasPrefix(local, ".") &&
		!strings.HasSuffix(local, ".") &&
		!strings.Contains(local, "..")
}
