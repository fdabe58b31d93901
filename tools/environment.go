// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
	"sort"
	"strings"
)

// Envvar is a documented environment variable with a default value.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var envvars = make(map[string]Envvar)

// RegEnv registers an environment variable with its default value and a
// short description shown in the help message.
func RegEnv(name, defv, desc string) {
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnv returns the value of a registered environment variable or its
// default value if unset. Unregistered variables always return "".
func GetEnv(name string) string {
	ev, ok := envvars[name]
	if !ok {
		return ""
	}
	if v, has := os.LookupEnv(name); has {
		return v
	}
	return ev.Defv
}

// GetEnvvars returns all registered environment variables sorted by name.
func GetEnvvars() []Envvar {
	var evs []Envvar
	for _, ev := range envvars {
		evs = append(evs, ev)
	}
	sort.Slice(evs, func(i, j int) bool {
		return evs[i].Name < evs[j].Name
	})
	return evs
}

// GetEnvList splits the value of a registered environment variable on commas
// and spaces, dropping empty entries.
func GetEnvList(name string) []string {
	return strings.FieldsFunc(GetEnv(name), func(r rune) bool {
		return r == ',' || r == ' '
	})
}
