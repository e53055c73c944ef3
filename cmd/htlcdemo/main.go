package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/script"
)

var (
	flagset      = flag.NewFlagSet("", flag.ExitOnError)
	secretFlag   = flagset.String("secret", "super_secret_preimage_12345", "secret preimage committed to by the contract")
	claimantFlag = flagset.String("claimant", "alice_public_key_xyz", "claimant (Alice) identity")
	refundFlag   = flagset.String("refund", "bob_public_key_abc", "refunding party (Bob) identity")
	timeoutFlag  = flagset.Int64("timeout", 21, "height at which the refund branch opens")
)

func main() {
	flagset.Parse(os.Args[1:])
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	secret := []byte(*secretFlag)
	alice := []byte(*claimantFlag)
	bob := []byte(*refundFlag)
	timeout := htlc.Height(*timeoutFlag)

	contract, err := htlc.NewContract(secret, alice, bob, timeout)
	if err != nil {
		return err
	}

	fmt.Println("HTLC locking script:")
	fmt.Println()
	fmt.Print(script.Lock(contract))

	fmt.Println()
	fmt.Println("Claim witness (Alice):")
	fmt.Print(script.ClaimWitness([]byte("alice_signature_data"), alice, secret))
	fmt.Println()
	fmt.Println("Refund witness (Bob):")
	fmt.Print(script.RefundWitness([]byte("bob_signature_data"), bob))

	ev := htlc.NewEvaluator(contract)

	steps := []struct {
		title   string
		verdict htlc.Verdict
	}{
		{
			title:   "Alice claims with the correct secret at height 10",
			verdict: ev.Claim(secret, alice),
		},
		{
			title:   "Alice tries a wrong secret at height 10",
			verdict: ev.Claim([]byte("wrong_secret"), alice),
		},
		{
			title:   "Bob tries a refund at height 15",
			verdict: ev.Refund(bob, 15),
		},
		{
			title:   "Bob claims the refund at height 25",
			verdict: ev.Refund(bob, 25),
		},
		{
			title:   "Alice can still claim with the secret at height 25",
			verdict: ev.Claim(secret, alice),
		},
	}

	for _, s := range steps {
		fmt.Println()
		fmt.Println(s.title)
		if err := script.Narrate(os.Stdout, s.verdict); err != nil {
			return err
		}
	}
	return nil
}
