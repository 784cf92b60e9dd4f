package textmarkup_test

import (
	"fmt"

	"github.com/invoiceagent/invoiceagent/pkg/textmarkup"
)

func ExampleConvert() {
	fmt.Println(textmarkup.Convert("Hi,\n\n* Rent = $5500\n\nThanks,\nMichael"))
	// Output:
	// <p>Hi,</p>
	// <ul>
	// <li>Rent = $5500</li>
	// </ul>
	// <p>Thanks,<br>Michael</p>
}
