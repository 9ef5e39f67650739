package format

import (
	"encoding/json"
	"io"

	"github.com/javasem/javasem/java"
)

// JSONModelEncoder renders a ClassModel (the AST-derived model used for
// .java sources) as indented JSON, mirroring JSONEncoder's output for
// classfile-derived models.
type JSONModelEncoder struct {
	w     io.Writer
	model *java.ClassModel
}

func NewJSONModelEncoder(w io.Writer) *JSONModelEncoder {
	return &JSONModelEncoder{w: w}
}

func (e *JSONModelEncoder) Encode(model *java.ClassModel) error {
	e.model = model
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONModelEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.model, "", "  ")
}
