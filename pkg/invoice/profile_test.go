package invoice_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceagent/invoiceagent/pkg/invoice"
	"github.com/invoiceagent/invoiceagent/pkg/textmarkup"
)

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	p := invoice.DefaultProfile()
	assert.NotEmpty(t, p.Business.Name)
	assert.Len(t, p.Business.Address, 2)
	assert.Equal(t, "RENT INVOICE", p.Title)
	assert.NotEmpty(t, p.Bank.BSB)
}

func TestParseProfile_OverridesDefaults(t *testing.T) {
	t.Parallel()

	p, err := invoice.ParseProfile([]byte(`
business:
  name: J GAO & M SUTANTO
bank:
  bsb: 083-028
property:
  - Shop 7/477 Burwood
`))
	require.NoError(t, err)

	assert.Equal(t, "J GAO & M SUTANTO", p.Business.Name)
	assert.Equal(t, "083-028", p.Bank.BSB)
	assert.Equal(t, []string{"Shop 7/477 Burwood"}, p.Property)
	assert.Equal(t, invoice.DefaultProfile().Footer, p.Footer)
}

func TestParseProfile_Invalid(t *testing.T) {
	t.Parallel()

	_, err := invoice.ParseProfile([]byte("business: [unclosed"))
	require.ErrorIs(t, err, invoice.ErrInvalidProfile)
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: TAX INVOICE\n"), 0o600))

	p, err := invoice.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "TAX INVOICE", p.Title)

	_, err = invoice.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, invoice.ErrInvalidProfile)
}

func TestProfile_PaymentBody(t *testing.T) {
	t.Parallel()

	p := invoice.DefaultProfile()
	p.Bank = invoice.BankAccount{AccountName: "Michael Sutanto", BSB: "083-028", AccountNumber: "17-800-9379"}

	got := textmarkup.Blocks("Hi,\n" + p.PaymentBody())
	assert.Equal(t, []string{
		"<p>Hi,</p>",
		"<br><p>Please pay to the following account:</p>",
		"<div style='margin-left: 36px;'>Michael Sutanto<br>BSB: 083-028<br>ACC: 17-800-9379</div>",
	}, got)
}
