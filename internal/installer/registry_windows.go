//go:build windows

package installer

import (
	"golang.org/x/sys/windows/registry"
)

// readUserPath reads the current user's PATH from the Environment registry
// key. An absent value is treated as empty, not an error.
func readUserPath() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Environment`, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	val, _, err := k.GetStringValue("PATH")
	if err == registry.ErrNotExist {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// writeUserPath writes the user PATH as REG_EXPAND_SZ so %VAR% references in
// pre-existing entries keep expanding.
func writeUserPath(value string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Environment`, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	return k.SetExpandStringValue("PATH", value)
}
