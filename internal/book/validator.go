package book

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Input is a decoded book payload. Pointer fields distinguish a missing
// property from its zero value. Integer bounds match the INTEGER columns.
type Input struct {
	ISBN      *string `json:"isbn" validate:"omitempty,notblank"`
	AmazonURL *string `json:"amazon_url" validate:"required,weburl"`
	Author    *string `json:"author" validate:"required,notblank"`
	Language  *string `json:"language" validate:"required,notblank"`
	Pages     *int    `json:"pages" validate:"required,gt=0,lte=2147483647"`
	Publisher *string `json:"publisher" validate:"required,notblank"`
	Title     *string `json:"title" validate:"required,notblank"`
	Year      *int    `json:"year" validate:"required,gte=-2147483648,lte=2147483647"`
}

// Book converts a validated input into a Book. Missing fields become zero values.
func (in Input) Book() Book {
	return Book{
		ISBN:      deref(in.ISBN),
		AmazonURL: deref(in.AmazonURL),
		Author:    deref(in.Author),
		Language:  deref(in.Language),
		Pages:     deref(in.Pages),
		Publisher: deref(in.Publisher),
		Title:     deref(in.Title),
		Year:      deref(in.Year),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

type property struct {
	name    string
	typeMsg string
}

// properties lists the schema in the order messages are reported.
var properties = []property{
	{"isbn", "must be a string"},
	{"amazon_url", "must be a string"},
	{"author", "must be a string"},
	{"language", "must be a string"},
	{"pages", "must be an integer"},
	{"publisher", "must be a string"},
	{"title", "must be a string"},
	{"year", "must be an integer"},
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("weburl", validateWebURL); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateWebURL accepts absolute http and https URLs with a host.
func validateWebURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateCreate checks a POST body. Every property, isbn included, is required.
func ValidateCreate(body []byte) (Input, []string) {
	return validateBody(body, true)
}

// ValidateUpdate checks a PUT body. Every property except isbn is required.
func ValidateUpdate(body []byte) (Input, []string) {
	return validateBody(body, false)
}

func validateBody(body []byte, requireISBN bool) (Input, []string) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return Input{}, []string{"request body must be a JSON object"}
	}

	var in Input
	targets := map[string]any{
		"isbn":       &in.ISBN,
		"amazon_url": &in.AmazonURL,
		"author":     &in.Author,
		"language":   &in.Language,
		"pages":      &in.Pages,
		"publisher":  &in.Publisher,
		"title":      &in.Title,
		"year":       &in.Year,
	}

	problems := make(map[string]string)
	for _, p := range properties {
		value, ok := raw[p.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, targets[p.name]); err != nil {
			problems[p.name] = fmt.Sprintf("%s %s", p.name, p.typeMsg)
		}
	}

	if requireISBN && in.ISBN == nil {
		if _, seen := problems["isbn"]; !seen {
			problems["isbn"] = "isbn is required"
		}
	}

	if err := validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return Input{}, []string{err.Error()}
		}
		for _, fe := range verrs {
			if _, seen := problems[fe.Field()]; seen {
				continue
			}
			problems[fe.Field()] = fieldMessage(fe)
		}
	}

	var messages []string
	for _, p := range properties {
		if msg, ok := problems[p.name]; ok {
			messages = append(messages, msg)
		}
	}

	var unknown []string
	for key := range raw {
		if _, ok := targets[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		messages = append(messages, fmt.Sprintf("%s is not an allowed property", key))
	}

	if len(messages) > 0 {
		return Input{}, messages
	}
	return in, nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be empty", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "weburl":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
