// Package forms describes how each record is laid out for data entry: which
// fields, in which fieldsets, rendered with which widget styling.
package forms

import "github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"

type Kind string

const (
	Text             Kind = "text"
	Number           Kind = "number"
	Email            Kind = "email"
	Date             Kind = "date"
	Time             Kind = "time"
	Select           Kind = "select"
	Checkbox         Kind = "checkbox"
	CheckboxMultiple Kind = "checkbox-multiple"
	Radio            Kind = "radio"
	Textarea         Kind = "textarea"
	File             Kind = "file"
	Color            Kind = "color"
	Range            Kind = "range"
)

const (
	commonInput   = "peer w-full px-3 py-2 rounded-md border-2 border-[hsl(var(--border))] bg-transparent premium-input text-[hsl(var(--foreground))] transition-all duration-200 focus:outline-none focus:border-[hsl(var(--primary))] focus:ring-1 focus:ring-[hsl(var(--primary))] focus:bg-[hsl(var(--accent))] placeholder-transparent"
	fileInput     = commonInput + " file:bg-[hsl(var(--secondary))] file:text-[hsl(var(--secondary-foreground))] file:border-0 file:px-4 file:py-2 file:mr-4 file:rounded-md file:cursor-pointer file:hover:bg-[hsl(var(--accent))] file:transition-all"
	checkboxInput = "sr-only peer"
	radioInput    = "appearance-none w-5 h-5 rounded-full border-2 border-[hsl(var(--border))] checked:border-[hsl(var(--primary))] relative cursor-pointer transition-all duration-200 after:content-[''] after:absolute after:opacity-0 after:w-2.5 after:h-2.5 after:bg-[hsl(var(--primary))] after:rounded-full after:top-1/2 after:left-1/2 after:-translate-x-1/2 after:-translate-y-1/2 checked:after:opacity-100"
	checkboxMulti = "appearance-none w-6 h-6 rounded-md border-2 border-[hsl(var(--border))] checked:bg-[hsl(var(--primary))] checked:border-[hsl(var(--primary))] relative cursor-pointer transition-all duration-200 after:content-[''] after:absolute after:opacity-0 after:w-1 after:h-2 after:border-r-2 after:border-b-2 after:border-[hsl(var(--primary-foreground))] after:rotate-45 after:top-1/2 after:left-1/2 after:-translate-y-[60%] after:-translate-x-1/2 checked:after:opacity-100 mr-3"
	colorInput    = "peer w-full h-10 px-1 py-1 rounded-md border-2 border-[hsl(var(--border))] bg-transparent text-[hsl(var(--foreground))] transition-all duration-200 focus:outline-none focus:border-[hsl(var(--primary))] focus:ring-1 focus:ring-[hsl(var(--primary))] cursor-pointer"
	rangeInput    = "w-full h-2 bg-[hsl(var(--secondary))] rounded-full appearance-none cursor-pointer focus:outline-none [&::-webkit-slider-thumb]:appearance-none [&::-webkit-slider-thumb]:w-5 [&::-webkit-slider-thumb]:h-5 [&::-webkit-slider-thumb]:rounded-full [&::-webkit-slider-thumb]:bg-[hsl(var(--primary))] [&::-webkit-slider-thumb]:cursor-pointer [&::-webkit-slider-thumb]:transition-all [&::-webkit-slider-thumb]:duration-200 [&::-webkit-slider-thumb]:hover:scale-110"
)

var classes = map[Kind]string{
	Text:             commonInput,
	Number:           commonInput,
	Email:            commonInput,
	Date:             commonInput,
	Time:             commonInput,
	Select:           commonInput,
	Textarea:         commonInput,
	Checkbox:         checkboxInput,
	CheckboxMultiple: checkboxMulti,
	Radio:            radioInput,
	File:             fileInput,
	Color:            colorInput,
	Range:            rangeInput,
}

// ClassFor returns the CSS classes for a widget kind. Unknown kinds get the
// common input styling.
func ClassFor(k Kind) string {
	if c, ok := classes[k]; ok {
		return c
	}
	return commonInput
}

type Field struct {
	Name     string       `json:"name"`
	JSONKey  string       `json:"jsonKey"`
	Label    string       `json:"label"`
	Kind     Kind         `json:"kind"`
	Class    string       `json:"class"`
	Required bool         `json:"required"`
	Rows     int          `json:"rows,omitempty"`
	Choices  []hrm.Choice `json:"choices,omitempty"`
	// Source names the resource whose records fill a select.
	Source string `json:"source,omitempty"`
}

type Fieldset struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Fields      []Field `json:"fields"`
}

type Schema struct {
	Entity    string     `json:"entity"`
	Title     string     `json:"title"`
	Multipart bool       `json:"multipart"`
	Fieldsets []Fieldset `json:"fieldsets"`
}

// Fields lists every field of the schema in display order.
func (s Schema) Fields() []Field {
	var out []Field
	for _, fs := range s.Fieldsets {
		out = append(out, fs.Fields...)
	}
	return out
}

func field(name, jsonKey, label string, kind Kind) Field {
	return Field{Name: name, JSONKey: jsonKey, Label: label, Kind: kind, Class: ClassFor(kind)}
}

func (f Field) required() Field {
	f.Required = true
	return f
}

func (f Field) choices(c []hrm.Choice) Field {
	f.Choices = c
	return f
}

func (f Field) source(resource string) Field {
	f.Source = resource
	return f
}

func (f Field) rows(n int) Field {
	f.Rows = n
	return f
}
