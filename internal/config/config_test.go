package config

import "testing"

func TestParseStripsComments(t *testing.T) {
	raw := []byte(`// header comment
{
  // currency in use
  "currency": "USD",
  "data_dir": "/tmp/ore-data"
}
`)
	cfg, err := parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Currency != "USD" {
		t.Errorf("currency = %q, want USD", cfg.Currency)
	}
	if cfg.DataDir != "/tmp/ore-data" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Currency != DefaultCurrency {
		t.Errorf("currency = %q, want default %q", cfg.Currency, DefaultCurrency)
	}
	if cfg.DataDir != "" {
		t.Errorf("data_dir = %q, want empty", cfg.DataDir)
	}
}

func TestParseBadJSON(t *testing.T) {
	cfg, err := parse([]byte(`{broken`))
	if err == nil {
		t.Fatal("parse on broken JSON expected error")
	}
	// Even on error the returned config is usable.
	if cfg.Currency != DefaultCurrency {
		t.Errorf("fallback currency = %q", cfg.Currency)
	}
}

func TestParseAnnotatedTemplate(t *testing.T) {
	// The template written on first run must survive its own comments.
	cfg, err := parse([]byte(configTemplate))
	if err != nil {
		t.Fatalf("parse(configTemplate): %v", err)
	}
	if cfg.Currency != DefaultCurrency {
		t.Errorf("template currency = %q, want %q", cfg.Currency, DefaultCurrency)
	}
}

func TestStripLineComments(t *testing.T) {
	in := []byte("// a\n  // b\nkeep\n\t// c\nalso")
	got := string(stripLineComments(in))
	want := "keep\nalso\n"
	if got != want {
		t.Errorf("stripLineComments = %q, want %q", got, want)
	}
}
