//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/tabulate"

	"github.com/markkurossi/dilithium/crypto/dilithium"
)

func main() {
	fMode := flag.String("mode", "2", "parameter set: 2, 3, or 5")
	fMessage := flag.String("m", "hello, dilithium", "message to sign and verify")
	fTable := flag.Bool("params", false, "print the parameter table and exit")
	flag.Parse()

	log.SetFlags(0)

	if *fTable {
		printParamsTable()
		return
	}

	mode, err := parseMode(*fMode)
	if err != nil {
		log.Fatalf("%v", err)
	}

	pk, sk, err := dilithium.GenerateKey(mode, rand.Reader)
	if err != nil {
		log.Fatalf("generate key: %v", err)
	}
	fmt.Printf("%s: generated key pair (pk=%d bytes, sk=%d bytes)\n",
		mode, len(pk), len(sk))

	msg := []byte(*fMessage)
	sig, err := dilithium.Sign(mode, sk, msg, rand.Reader)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	fmt.Printf("%s: signed %q (sig=%d bytes)\n", mode, msg, len(sig))

	if err := dilithium.Verify(mode, pk, msg, sig); err != nil {
		log.Fatalf("verify: %v", err)
	}
	fmt.Printf("%s: signature verified ok\n", mode)
}

func parseMode(s string) (dilithium.Mode, error) {
	switch s {
	case "2":
		return dilithium.Mode2, nil
	case "3":
		return dilithium.Mode3, nil
	case "5":
		return dilithium.Mode5, nil
	default:
		return 0, fmt.Errorf("unknown mode %q, want 2, 3, or 5", s)
	}
}

func printParamsTable() {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Mode")
	tab.Header("K")
	tab.Header("L")
	tab.Header("eta")
	tab.Header("tau")
	tab.Header("beta")
	tab.Header("gamma1")
	tab.Header("gamma2")
	tab.Header("omega")
	tab.Header("pk bytes")
	tab.Header("sk bytes")
	tab.Header("sig bytes")

	for _, mode := range []dilithium.Mode{dilithium.Mode2, dilithium.Mode3, dilithium.Mode5} {
		p, err := dilithium.ParamsForMode(mode)
		if err != nil {
			log.Fatalf("%v", err)
		}
		row := tab.Row()
		row.Column(mode.String())
		row.Column(fmt.Sprintf("%d", p.K))
		row.Column(fmt.Sprintf("%d", p.L))
		row.Column(fmt.Sprintf("%d", p.Eta))
		row.Column(fmt.Sprintf("%d", p.Tau))
		row.Column(fmt.Sprintf("%d", p.Beta))
		row.Column(fmt.Sprintf("%d", p.Gamma1))
		row.Column(fmt.Sprintf("%d", p.Gamma2))
		row.Column(fmt.Sprintf("%d", p.Omega))
		row.Column(fmt.Sprintf("%d", p.PublicKeySize()))
		row.Column(fmt.Sprintf("%d", p.SecretKeySize()))
		row.Column(fmt.Sprintf("%d", p.SignatureSize()))
	}

	tab.Print(os.Stdout)
}
