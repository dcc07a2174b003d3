package main

import (
	"bufio"
	cryptorand "crypto/rand"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lavode/hybrid-elgamal/backend"
	"github.com/lavode/hybrid-elgamal/facade"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	curveMode := flag.Bool("curve", true, "use the P-224 elliptic curve backend (default)")
	primeMode := flag.Bool("prime", false, "use the big-prime Schnorr-subgroup backend")
	cpa := flag.Bool("cpa", false, "not implemented")
	cca := flag.Bool("cca", false, "not implemented")
	pBits := flag.Int("p-bits", backend.DefaultPBits, "prime modulus bit length, -prime only")
	qBits := flag.Int("q-bits", backend.DefaultQBits, "subgroup order bit length, -prime only")
	flag.Parse()

	if *cpa || *cca {
		fmt.Fprintln(os.Stderr, "hybrid-elgamal: -cpa/-cca security-notion selection is not implemented")
		os.Exit(1)
	}

	msg, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		log.Fatal().Err(err).Msg("reading stdin")
	}

	var cipher facade.Cipher
	var backendName string
	if *primeMode {
		backendName = "big-prime"
		cipher, err = facade.NewBigPrime(cryptorand.Reader, *pBits, *qBits)
	} else if *curveMode {
		backendName = "p224"
		cipher, err = facade.NewP224(cryptorand.Reader)
	} else {
		fmt.Fprintln(os.Stderr, "hybrid-elgamal: no backend selected, pass -curve or -prime")
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Str("backend", backendName).Msg("key generation failed")
	}

	ciphertext, err := cipher.Encrypt(cryptorand.Reader, string(msg))
	if err != nil {
		log.Fatal().Err(err).Msg("encryption failed")
	}

	recovered, err := cipher.Decrypt(ciphertext)
	if err != nil {
		log.Fatal().Err(err).Msg("decryption failed")
	}

	log.Info().
		Str("backend", backendName).
		Int("plaintext_bytes", len(msg)).
		Int("ciphertext_hex_bytes", len(ciphertext)).
		Bool("roundtrip_ok", recovered == string(msg)).
		Msg("hybrid-elgamal round trip")

	fmt.Printf("Ciphertext (hex): %s\n", ciphertext)
	fmt.Printf("Recovered plaintext: %s\n", recovered)
}
