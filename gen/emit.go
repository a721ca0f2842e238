package gen

import (
	"bytes"
	"text/template"
	"unicode"
)

// defaultPackage names the generated package when the manifest leaves it
// unset.
const defaultPackage = "kinds"

type fileModel struct {
	Package string
	Enums   []enumModel
}

type enumModel struct {
	TypeName string
	NamesVar string
	Members  []memberModel
}

type memberModel struct {
	ConstName string
	Name      string
}

var fileTemplate = template.Must(template.New("descriptor").Parse(`// Code generated by tuidgen. DO NOT EDIT.

package {{.Package}}
{{- range .Enums}}
{{- $enum := .}}

// {{.TypeName}} is a closed kind enumeration. Tags are positional: the
// n-th declared member carries tag n, so reordering members is the only
// way to change tags.
type {{.TypeName}} uint8

const (
{{- range $i, $m := .Members}}
	{{$m.ConstName}}{{if eq $i 0}} {{$enum.TypeName}} = iota{{end}}
{{- end}}
)

var {{.NamesVar}} = [...]string{
{{- range .Members}}
	"{{.Name}}",
{{- end}}
}

// Tag returns the positional tag of the kind.
func (k {{.TypeName}}) Tag() uint8 { return uint8(k) }

// Name returns the canonical display name of the kind.
func (k {{.TypeName}}) Name() string { return {{.NamesVar}}[k] }

// FromTag recovers the kind assigned the given tag.
func ({{.TypeName}}) FromTag(tag uint8) ({{.TypeName}}, bool) {
	if int(tag) >= len({{.NamesVar}}) {
		return 0, false
	}
	return {{.TypeName}}(tag), true
}
{{- end}}
`))

// Emit renders the descriptor source for a manifest whose declarations
// already passed Validate.
func Emit(manifest *Manifest) ([]byte, error) {
	model := &fileModel{Package: manifest.Package}
	if model.Package == "" {
		model.Package = defaultPackage
	}
	for i := range manifest.Enums {
		decl := &manifest.Enums[i]
		enum := enumModel{TypeName: decl.Name, NamesVar: namesVar(decl.Name)}
		for j := range decl.Members {
			member := &decl.Members[j]
			name, ok := member.Attr(attrName)
			if !ok {
				name = Derive(member.Ident)
			}
			enum.Members = append(enum.Members, memberModel{
				ConstName: decl.Name + member.Ident,
				Name:      name,
			})
		}
		model.Enums = append(model.Enums, enum)
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// namesVar derives the unexported names-array identifier for a type name.
func namesVar(typeName string) string {
	runes := []rune(typeName)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes) + "Names"
}
