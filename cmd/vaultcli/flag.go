package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/keyper-labs/linera.dev"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *linera.Address {
	var a linera.Address
	if defaultVal != "" {
		var err error
		a, err = linera.ParseAddress(defaultVal)
		if err != nil {
			flagDie("Cannot parse %q address flag value. %s", name, err)
		}
	}
	fl.Var((*flagAddress)(&a), name, usage)
	return &a
}

type flagAddress linera.Address

func (a flagAddress) String() string {
	if len(a) == 0 {
		return ""
	}
	return linera.Address(a).String()
}

func (a *flagAddress) Set(raw string) error {
	addr, err := linera.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = flagAddress(addr)
	return nil
}

// flAddressList returns a comma separated list of addresses.
func flAddressList(fl *flag.FlagSet, name, usage string) *[]linera.Address {
	var list []linera.Address
	fl.Var((*flagAddressList)(&list), name, usage)
	return &list
}

type flagAddressList []linera.Address

func (l flagAddressList) String() string {
	s := make([]string, len(l))
	for i, a := range l {
		s[i] = a.String()
	}
	return strings.Join(s, ",")
}

func (l *flagAddressList) Set(raw string) error {
	var list []linera.Address
	for _, chunk := range strings.Split(raw, ",") {
		addr, err := linera.ParseAddress(strings.TrimSpace(chunk))
		if err != nil {
			return err
		}
		list = append(list, addr)
	}
	*l = list
	return nil
}

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var b []byte
	if defaultVal != "" {
		var err error
		b, err = hex.DecodeString(defaultVal)
		if err != nil {
			flagDie("Cannot parse %q hex encoded flag value. %s", name, err)
		}
	}
	fl.Var((*flagbyte)(&b), name, usage)
	return &b
}

type flagbyte []byte

func (b flagbyte) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbyte) Set(raw string) error {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flagDie terminates the program when a flag value is invalid.
func flagDie(description string, args ...interface{}) {
	if !strings.HasSuffix(description, "\n") {
		description += "\n"
	}
	fmt.Fprintf(os.Stderr, description, args...)
	os.Exit(2)
}
