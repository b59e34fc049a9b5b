package figure

import (
	"fmt"
	"strings"
)

// ============================================================================
// AXIS KEY RESOLUTION
// ============================================================================
// Callers name axes in short form ("x", "y2") or long form ("xaxis",
// "yaxis2"). Layout keys always use the long form; trace references
// always use the short form. Both spellings resolve to the same key so
// a trace saying xaxis:"x" matches an axis named either "x" or "xaxis".
// ============================================================================

// layoutKey resolves an axis name to its Plotly layout key:
// "x" → "xaxis", "y2" → "yaxis2", "xaxis2" → "xaxis2".
func layoutKey(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", fmt.Errorf("%w: empty axis name", ErrUnknownAxis)
	}

	letter := n[:1]
	suffix := n[1:]
	if rest, ok := strings.CutPrefix(suffix, "axis"); ok {
		suffix = rest
	}

	if letter != "x" && letter != "y" && letter != "z" {
		return "", fmt.Errorf("%w: axis name %q must start with x, y or z", ErrUnknownAxis, name)
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: axis name %q has non-numeric suffix %q", ErrUnknownAxis, name, suffix)
		}
	}

	// "x1" and "x" are the same primary axis.
	if suffix == "" || suffix == "1" {
		return letter + "axis", nil
	}
	return letter + "axis" + suffix, nil
}

// shortRef normalizes an axis reference to the short form Plotly uses on
// traces and in anchor/overlaying attributes ("x", "y2"). Unresolvable
// names pass through untouched — validation rejects them before emission.
func shortRef(name string) string {
	key, err := layoutKey(name)
	if err != nil {
		return name
	}
	return key[:1] + key[5:]
}

// sceneKey resolves an axis to its key inside a 3-D scene: "xaxis",
// "yaxis" or "zaxis". An explicit SceneRole wins; otherwise the legacy
// convention applies — the trailing discriminator character of the name
// is stripped and the remainder resolved as a primary axis.
func sceneKey(a Axis) (string, error) {
	if a.SceneRole != "" {
		role := strings.ToLower(a.SceneRole)
		if role != "x" && role != "y" && role != "z" {
			return "", fmt.Errorf("%w: scene role %q must be x, y or z", ErrUnknownAxis, a.SceneRole)
		}
		return role + "axis", nil
	}

	if len(a.Name) < 2 {
		return "", fmt.Errorf("%w: axis %q too short to strip a scene discriminator; set SceneRole", ErrUnknownAxis, a.Name)
	}
	key, err := layoutKey(a.Name[:len(a.Name)-1])
	if err != nil {
		return "", err
	}
	if key != "xaxis" && key != "yaxis" && key != "zaxis" {
		return "", fmt.Errorf("%w: axis %q does not reduce to a scene role", ErrUnknownAxis, a.Name)
	}
	return key, nil
}
