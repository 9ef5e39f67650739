package format

import (
	"encoding"

	"github.com/javasem/javasem/java"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(class *java.Class) error
}
