package importer

import (
	"fmt"
	"io"

	"github.com/jkweon/txscreen/internal/importer/bank"
	"github.com/jkweon/txscreen/internal/importer/card"
	"github.com/jkweon/txscreen/internal/merge"
)

type Service struct {
	bankParser BankParser
	cardParser CardParser
}

func NewService() *Service {
	return &Service{
		bankParser: bank.NewParser(),
		cardParser: card.NewParser(),
	}
}

// ParseBank parses a bank statement export into source rows.
func (s *Service) ParseBank(r io.Reader) ([]merge.BankRow, error) {
	rows, err := s.bankParser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing bank statement: %w", err)
	}

	return rows, nil
}

// ParseCard parses a card statement export into source rows.
func (s *Service) ParseCard(r io.Reader) ([]merge.CardRow, error) {
	rows, err := s.cardParser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing card statement: %w", err)
	}

	return rows, nil
}
