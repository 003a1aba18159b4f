package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// fileExists reports whether path exists. A stat failure other than
// non-existence is returned as err, never folded into "absent".
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// askForConfirmation shows msg and waits for the user to answer y or n
// (typing ENTER defaults to no).
func askForConfirmation(msg string) bool {
	fmt.Print(msg, " ")
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "y", "Y":
			return true
		case "", "n", "N":
			return false
		}
		fmt.Print("please answer y or n: ")
	}
	return false
}

// confirmIfExists returns true if path does not exist, or if the user
// confirmed its overwrite.
func confirmIfExists(path, msg string) (bool, error) {
	exists, err := fileExists(path)
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}
	return askForConfirmation(msg), nil
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error,", err)
		os.Exit(1)
	}
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func marshalYAMLFile(path string, in interface{}) error {
	buf, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
