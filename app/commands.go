package app

import (
	"time"
)

// --- Commands ---
// Commands change the custom currency catalog.

// RegisterCurrencyCommand adds a custom currency. Dates use YYYY-MM-DD and
// Digits takes a digit count, "N.A." or "1/5".
type RegisterCurrencyCommand struct {
	Code        string `validate:"required,max=32,excludesall=0x7C;"`
	Namespace   string `validate:"required,max=64,excludesall=0x7C;"`
	NumericCode string `validate:"omitempty,numeric,max=8"`
	Digits      string `validate:"required"`
	EnglishName string `validate:"max=128"`
	Symbol      string `validate:"max=16"`
	ValidFrom   string `validate:"omitempty,datetime=2006-01-02"`
	ValidTo     string `validate:"omitempty,datetime=2006-01-02"`
}

type UnregisterCurrencyCommand struct {
	Code      string `validate:"required"`
	Namespace string `validate:"required"`
	Reason    string
}

// ValueCommand builds a Money value. Currency is "CODE" or "CODE;NAMESPACE" and
// an empty Mode means the service default.
type ValueCommand struct {
	Amount   string `validate:"required"`
	Currency string `validate:"required"`
	Mode     string
}

// --- Queries ---

// LookupQuery resolves a code. With an empty Namespace every namespace is
// searched and more than one match is an error.
type LookupQuery struct {
	Code      string `validate:"required"`
	Namespace string
}

// ListQuery filters the registry listing. Zero values mean no filter.
type ListQuery struct {
	Namespace string
	ValidOn   time.Time
}

type GetHistoryQuery struct {
	Limit int `validate:"min=0"`
	Skip  int `validate:"min=0"`
}
