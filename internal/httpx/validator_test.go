package httpx

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Title string  `json:"title" validate:"required,min=1,max=255"`
	ISBN  string  `json:"isbn" validate:"required,min=10,max=20"`
	Pages *int    `json:"pages" validate:"omitnil,gte=0"`
	Notes *string `json:"notes" validate:"omitnil,min=1"`
}

func TestValidateStruct_Valid(t *testing.T) {
	pages := 100
	details := ValidateStruct(sampleRequest{Title: "T", ISBN: "1234567890", Pages: &pages})
	if details != nil {
		t.Errorf("Expected no details, got %v", details)
	}
}

func TestValidateStruct_RequiredAndBounds(t *testing.T) {
	details := ValidateStruct(sampleRequest{ISBN: "123"})
	if len(details) != 2 {
		t.Fatalf("Expected 2 details, got %d: %v", len(details), details)
	}

	byField := map[string]string{}
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	if !strings.Contains(byField["title"], "required") {
		t.Errorf("Expected title required message, got %q", byField["title"])
	}
	if !strings.Contains(byField["isbn"], "at least") {
		t.Errorf("Expected isbn min message, got %q", byField["isbn"])
	}
}

func TestValidateStruct_NilPointersSkipped(t *testing.T) {
	details := ValidateStruct(sampleRequest{Title: "T", ISBN: "1234567890"})
	if details != nil {
		t.Errorf("Expected nil pointers to pass, got %v", details)
	}
}

func TestValidateStruct_PresentButInvalidPointer(t *testing.T) {
	negative := -1
	details := ValidateStruct(sampleRequest{Title: "T", ISBN: "1234567890", Pages: &negative})
	if len(details) != 1 {
		t.Fatalf("Expected 1 detail, got %d", len(details))
	}
	if details[0].Field != "pages" {
		t.Errorf("Expected field pages, got %q", details[0].Field)
	}
}
