package script

import (
	"fmt"
	"io"

	"github.com/iov-one/htlc"
)

// Narrate writes a step-by-step account of an evaluation verdict. Every
// sub-check is printed with its expected and presented value, followed by
// the overall outcome. The evaluator itself never produces output, all
// narration happens here.
func Narrate(w io.Writer, v htlc.Verdict) error {
	for i, c := range v.Checks {
		status := "ok"
		if !c.Pass {
			status = "FAIL"
		}
		_, err := fmt.Fprintf(w, "%2d. %-18s %-4s want %s, got %s\n",
			i+1, c.Name, status, c.Want, c.Got)
		if err != nil {
			return err
		}
	}
	outcome := "not authorized"
	if v.Authorized {
		outcome = "authorized"
	}
	_, err := fmt.Fprintf(w, "=> %s\n", outcome)
	return err
}
