package native

import (
	"strings"

	wmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/menu"
)

// accelerator converts a binding such as "Ctrl+Right" or "F11". Ctrl stays
// the Control key on every platform. It returns nil for an empty or
// unparsable binding.
func accelerator(binding string) *keys.Accelerator {
	binding = strings.ToLower(strings.ReplaceAll(binding, " ", ""))
	if binding == "" {
		return nil
	}

	parts := strings.Split(binding, "+")
	if last := len(parts) - 1; parts[last] == "esc" {
		parts[last] = "escape"
	}

	acc, err := keys.Parse(strings.Join(parts, "+"))
	if err != nil {
		logging.Warnf("native: menu accelerator %q: %v", binding, err)
		return nil
	}
	return acc
}

func buildMenu(spec menu.Spec, activate func(menu.Command)) *wmenu.Menu {
	root := wmenu.NewMenu()
	for _, group := range spec {
		sub := root.AddSubmenu(group.Label)
		for _, item := range group.Items {
			if item.Separator {
				sub.AddSeparator()
				continue
			}
			cmd := item.Command
			sub.AddText(item.Label, accelerator(item.Accelerator), func(*wmenu.CallbackData) {
				if activate != nil {
					activate(cmd)
				}
			})
		}
	}
	return root
}
