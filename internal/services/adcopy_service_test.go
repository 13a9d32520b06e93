package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adlaunch/backend/internal/models"
	"go.uber.org/zap"
)

func TestFallbackAdCopies(t *testing.T) {
	tests := []struct {
		name        string
		description string
		objective   string
		wantProduct string
	}{
		{"sales objective", "Handmade organic soap", models.ObjectiveSales, "Handmade organic soap"},
		{"awareness objective", "Fresh juice", models.ObjectiveAwareness, "Fresh juice"},
		{"traffic objective", "Custom furniture store", models.ObjectiveTraffic, "Custom furniture store"},
		{"unknown objective uses default set", "Wall art", "something-else", "Wall art"},
		{"long description truncated to three words", "Handmade organic soap with lavender oil", models.ObjectiveSales, "Handmade organic soap"},
		{"empty description", "", models.ObjectiveSales, "Your Product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copies := FallbackAdCopies(tt.description, tt.objective)
			if len(copies) != 3 {
				t.Fatalf("FallbackAdCopies() returned %d copies, want 3", len(copies))
			}
			for _, c := range copies {
				if !strings.Contains(c, tt.wantProduct) {
					t.Errorf("copy %q does not contain %q", c, tt.wantProduct)
				}
			}
		})
	}
}

func TestFallbackAdCopiesDeterministic(t *testing.T) {
	first := FallbackAdCopies("Handmade organic soap", models.ObjectiveSales)
	second := FallbackAdCopies("Handmade organic soap", models.ObjectiveSales)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("copy %d differs between calls: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestFallbackSetsDifferPerObjective(t *testing.T) {
	desc := "Handmade organic soap"
	sales := FallbackAdCopies(desc, models.ObjectiveSales)
	traffic := FallbackAdCopies(desc, models.ObjectiveTraffic)

	if sales[0] == traffic[0] {
		t.Error("sales and traffic template sets produced identical copy")
	}
}

type stubGenerator struct {
	copies []string
	err    error
}

func (g *stubGenerator) Generate(ctx context.Context, productDescription, objective string) ([]string, error) {
	return g.copies, g.err
}

func TestSuggestReturnsGeneratorOutput(t *testing.T) {
	svc := NewAdCopyService(&stubGenerator{copies: []string{"x", "y", "z"}}, zap.NewNop())

	copies, err := svc.Suggest(context.Background(), "soap", models.ObjectiveSales)
	if err != nil {
		t.Fatal(err)
	}
	if len(copies) != 3 || copies[2] != "z" {
		t.Errorf("Suggest() = %v, want generator output", copies)
	}
}

func TestSuggestPropagatesGeneratorError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	svc := NewAdCopyService(&stubGenerator{err: wantErr}, zap.NewNop())

	if _, err := svc.Suggest(context.Background(), "soap", models.ObjectiveSales); !errors.Is(err, wantErr) {
		t.Errorf("Suggest() error = %v, want %v", err, wantErr)
	}
}
