package commons

import "strings"

// NormalizeName recorta espacios y reporta si el nombre resultante es
// utilizable. Un nombre en blanco se trata igual que uno ausente.
func NormalizeName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	return name, name != ""
}
