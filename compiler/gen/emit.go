package gen

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/syssam/entigen/schema"
)

// Attributes holds the independent toggles for the data annotations the
// emitter may attach to a class and its properties. A disabled toggle
// suppresses the annotation everywhere, including its using directive when
// nothing else needs it.
type Attributes struct {
	Key               bool
	Required          bool
	Column            bool
	MaxLength         bool
	Table             bool
	DatabaseGenerated bool
}

// annotations reports whether any using-directive-bearing toggle is set
// for the plain DataAnnotations namespace.
func (a Attributes) annotations() bool { return a.Key || a.Required || a.MaxLength }

// schemaAnnotations reports the same for the DataAnnotations.Schema
// namespace.
func (a Attributes) schemaAnnotations() bool { return a.Column || a.Table || a.DatabaseGenerated }

// Options configures an Emitter.
type Options struct {
	// Namespace is the namespace the generated classes are placed in.
	Namespace string
	// Attributes selects the annotations to emit.
	Attributes Attributes
}

// File is one rendered class file, named after its PascalCase class.
type File struct {
	Name    string // file name, e.g. "UserAccounts.cs"
	Content string
}

// collisionSuffix disambiguates a property whose converted name equals the
// class name, which the target language rejects.
const collisionSuffix = "Value"

// classTemplate lays out one class file. The view model carries
// pre-rendered annotation lines so the template stays pure layout.
// Rendering is deterministic: identical inputs produce identical bytes.
var classTemplate = template.Must(template.New("class").Parse(`{{range .Usings}}using {{.}};
{{end}}
namespace {{.Namespace}}
{
{{if .TableAttribute}}    [Table("{{.TableAttribute}}")]
{{end}}    public class {{.ClassName}}
    {
{{range $i, $p := .Properties}}{{if $i}}
{{end}}{{range $p.Annotations}}        {{.}}
{{end}}        public {{$p.Type}} {{$p.Name}} { get; set; }
{{end}}    }
}
`))

type classModel struct {
	Usings         []string
	Namespace      string
	TableAttribute string
	ClassName      string
	Properties     []propertyModel
}

type propertyModel struct {
	Annotations []string
	Type        string
	Name        string
}

// Emitter assembles class files from introspected tables. It performs no
// I/O; persisting the result is the Writer's job.
type Emitter struct {
	opts Options
}

// NewEmitter creates an Emitter with the given options.
func NewEmitter(opts Options) *Emitter {
	return &Emitter{opts: opts}
}

// Emit renders the class file for one table. Columns are processed in the
// order given, which the introspector guarantees to be ordinal order.
// Unknown native types degrade to the string fallback and a Warning;
// unconvertible identifiers return a NamingError.
func (e *Emitter) Emit(t schema.Table) (*File, []Warning, error) {
	className, err := Pascal(t.Name)
	if err != nil {
		return nil, nil, err
	}

	model := classModel{
		Usings:    e.usings(),
		Namespace: e.opts.Namespace,
		ClassName: className,
	}
	if e.opts.Attributes.Table {
		// The annotation carries the raw table name; only the class
		// identifier is PascalCase.
		model.TableAttribute = t.Name
	}

	var warnings []Warning
	for _, col := range t.Columns {
		prop, warns, err := e.property(t.Name, className, col)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, warns...)
		model.Properties = append(model.Properties, prop)
	}

	var b strings.Builder
	if err := classTemplate.Execute(&b, model); err != nil {
		return nil, nil, err
	}
	return &File{Name: className + ".cs", Content: b.String()}, warnings, nil
}

// usings returns the sorted using directives for the enabled toggles.
// "System" is always present (DateTime, TimeSpan); the annotation
// namespaces appear only when an enabled toggle needs them.
func (e *Emitter) usings() []string {
	usings := []string{"System"}
	if e.opts.Attributes.annotations() {
		usings = append(usings, "System.ComponentModel.DataAnnotations")
	}
	if e.opts.Attributes.schemaAnnotations() {
		usings = append(usings, "System.ComponentModel.DataAnnotations.Schema")
	}
	sort.Strings(usings)
	return usings
}

// property builds the view model for one column: converted name, mapped
// type, and the annotation lines in their fixed order.
func (e *Emitter) property(tableName, className string, col schema.Column) (propertyModel, []Warning, error) {
	name, err := Pascal(col.Name)
	if err != nil {
		return propertyModel{}, nil, err
	}
	if name == className {
		name += collisionSuffix
	}

	csType, wrapped, known := MapColumn(col)
	var warnings []Warning
	if !known {
		warnings = append(warnings, Warning{
			Table:   tableName,
			Column:  col.Name,
			Message: fmt.Sprintf("unknown native type %q mapped to %s", col.DataType, stringType),
		})
	}

	attrs := e.opts.Attributes
	nonNullable := !col.Nullable || col.PrimaryKey

	// Fixed annotation order: Key, Required, Column, MaxLength,
	// DatabaseGenerated.
	var lines []string
	if attrs.Key && col.PrimaryKey {
		lines = append(lines, "[Key]")
	}
	if attrs.Required && nonNullable && csType == stringType {
		lines = append(lines, "[Required]")
	}
	if attrs.Column {
		lines = append(lines, fmt.Sprintf("[Column(%q)]", col.Name))
	}
	if attrs.MaxLength && col.MaxLength > 0 && (col.DataType == "varchar" || col.DataType == "char") {
		lines = append(lines, fmt.Sprintf("[MaxLength(%d)]", col.MaxLength))
	}
	if attrs.DatabaseGenerated && col.AutoIncrement {
		lines = append(lines, "[DatabaseGenerated(DatabaseGeneratedOption.Identity)]")
	}

	if wrapped {
		csType += "?"
	}
	return propertyModel{Annotations: lines, Type: csType, Name: name}, warnings, nil
}
