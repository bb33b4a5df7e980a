package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	amlchecker "github.com/mlproof/aml-checker/pkg/aml-checker"
)

// Input is one verification request read as a single JSON line from
// stdin: the three bytecode buffers, hex-encoded.
type Input struct {
	Gamma  string `json:"gamma"`
	Claims string `json:"claims"`
	Proof  string `json:"proof"`
}

// Output is the verification result written as a single JSON line to
// stdout.
type Output struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !scanner.Scan() {
		fatal("failed to read request")
	}

	var in Input
	if err := json.Unmarshal(scanner.Bytes(), &in); err != nil {
		fatal(fmt.Sprintf("failed to parse request: %v", err))
	}

	gamma, err := hex.DecodeString(in.Gamma)
	if err != nil {
		fatal(fmt.Sprintf("failed to decode gamma: %v", err))
	}
	claims, err := hex.DecodeString(in.Claims)
	if err != nil {
		fatal(fmt.Sprintf("failed to decode claims: %v", err))
	}
	proof, err := hex.DecodeString(in.Proof)
	if err != nil {
		fatal(fmt.Sprintf("failed to decode proof: %v", err))
	}

	logStderr("verifying proof...")
	valid, verr := amlchecker.Verify(amlchecker.Buffers{
		Gamma:  gamma,
		Claims: claims,
		Proof:  proof,
	})

	out := Output{Valid: valid}
	if verr != nil {
		out.Error = verr.Error()
		if ve, ok := verr.(*amlchecker.VerifierError); ok {
			out.Code = ve.Code.String()
		}
	}
	logStderr(fmt.Sprintf("verification result: valid=%v", valid))

	encoded, err := json.Marshal(out)
	if err != nil {
		fatal(fmt.Sprintf("failed to serialize result: %v", err))
	}
	os.Stdout.Write(encoded)
	os.Stdout.Write([]byte("\n"))
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "aml-checker:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
