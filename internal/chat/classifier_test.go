package chat

import (
	"fmt"
	"testing"
)

func TestClassifyMatch(t *testing.T) {
	q := Classify("Harga BBCA pada 2025-09-01")
	if q == nil {
		t.Fatal("Expected a structured query")
	}
	if q.Symbol != "BBCA" {
		t.Errorf("Expected symbol BBCA, got %s", q.Symbol)
	}
	if q.Date != "2025-09-01" {
		t.Errorf("Expected date 2025-09-01, got %s", q.Date)
	}
}

func TestClassifyMixedCase(t *testing.T) {
	q := Classify("harga bbca PADA 2025-09-01")
	if q == nil {
		t.Fatal("Expected a structured query for mixed-case input")
	}
	if q.Symbol != "BBCA" {
		t.Errorf("Expected symbol normalized to BBCA, got %s", q.Symbol)
	}
	if q.Date != "2025-09-01" {
		t.Errorf("Expected date 2025-09-01, got %s", q.Date)
	}
}

func TestClassifyEmbedded(t *testing.T) {
	q := Classify("Tolong cek harga TLKM pada 2024-12-31 ya")
	if q == nil {
		t.Fatal("Expected a structured query inside a longer sentence")
	}
	if q.Symbol != "TLKM" {
		t.Errorf("Expected symbol TLKM, got %s", q.Symbol)
	}
}

func TestClassifyLexicalDateOnly(t *testing.T) {
	// "2025-13-40" is not a calendar date but matches the lexical shape;
	// the classifier passes it through untouched.
	q := Classify("Harga XYZQ pada 2025-13-40")
	if q == nil {
		t.Fatal("Expected a structured query for a lexically valid date")
	}
	if q.Date != "2025-13-40" {
		t.Errorf("Expected verbatim date 2025-13-40, got %s", q.Date)
	}
}

func TestClassifyMiss(t *testing.T) {
	inputs := []string{
		"Apa itu saham?",
		"Harga BBCA",
		"BBCA pada 2025-09-01",
		"Harga BBCA pada kemarin",
		"Harga BBCA pada 2025-9-1",
		"",
	}
	for _, in := range inputs {
		if q := Classify(in); q != nil {
			t.Errorf("Expected no structured query for %q, got %+v", in, q)
		}
	}
}

func TestClassifyRoundTrip(t *testing.T) {
	symbols := []string{"BBCA", "TLKM", "ASII", "X1"}
	for _, sym := range symbols {
		msg := fmt.Sprintf("Harga %s pada 2025-09-01", sym)
		q := Classify(msg)
		if q == nil {
			t.Fatalf("Expected %q to classify", msg)
		}
		if q.Symbol != sym || q.Date != "2025-09-01" {
			t.Errorf("Round trip for %s failed: got %+v", sym, q)
		}
	}
}
