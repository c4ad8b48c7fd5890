package importer

import (
	"io"

	"github.com/jkweon/txscreen/internal/merge"
)

// Source identifies which kind of statement a file is.
type Source string

const (
	SourceBank Source = "bank"
	SourceCard Source = "card"
)

type BankParser interface {
	Parse(r io.Reader) ([]merge.BankRow, error)
}

type CardParser interface {
	Parse(r io.Reader) ([]merge.CardRow, error)
}
