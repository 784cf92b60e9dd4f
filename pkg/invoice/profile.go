package invoice

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// Business identifies the invoice issuer.
type Business struct {
	Name    string   `yaml:"name"`
	ABN     string   `yaml:"abn"`
	Address []string `yaml:"address"`
	Contact string   `yaml:"contact"`
}

// BankAccount is where the invoice should be paid.
type BankAccount struct {
	AccountName   string `yaml:"account_name"`
	BSB           string `yaml:"bsb"`
	AccountNumber string `yaml:"account_number"`
}

// Profile is the issuer-side configuration of an invoice.
type Profile struct {
	Business Business    `yaml:"business"`
	Bank     BankAccount `yaml:"bank"`
	Customer Party       `yaml:"customer"`
	Property []string    `yaml:"property"`
	Title    string      `yaml:"title"`
	GSTNote  string      `yaml:"gst_note"`
	Footer   string      `yaml:"footer"`
}

// DefaultProfile returns the embedded sample profile.
func DefaultProfile() *Profile {
	p, err := ParseProfile(defaultProfile)
	if err != nil {
		panic(err)
	}
	return p
}

// LoadProfile reads a YAML profile from path.
// Fields missing from the file keep the values of the default profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML profile on top of the embedded defaults.
func ParseProfile(data []byte) (*Profile, error) {
	p := &Profile{}
	if err := yaml.Unmarshal(defaultProfile, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return p, nil
}

// PaymentBody renders the payment instructions in the plain-text dialect
// understood by the textmarkup converter.
func (p *Profile) PaymentBody() string {
	var b strings.Builder
	b.WriteString("Please pay to the following account:\n\n")
	for _, l := range []string{
		p.Bank.AccountName,
		"BSB: " + p.Bank.BSB,
		"ACC: " + p.Bank.AccountNumber,
	} {
		b.WriteString("    ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
