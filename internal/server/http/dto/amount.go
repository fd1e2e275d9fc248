package dto

import (
	"bytes"
	"fmt"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// Amount is a money value carried as a JSON number with two fraction digits.
type Amount model.Money

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(model.Money(a).String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	m, err := model.ParseMoney(string(bytes.Trim(data, `"`)))
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(m)
	return nil
}
