package menu

// Command names a menu action. Activation dispatches through the
// Controller's handler table keyed by these names.
type Command string

const (
	CommandOpenURL        Command = "open-url"
	CommandForward        Command = "forward"
	CommandBack           Command = "back"
	CommandReload         Command = "reload"
	CommandStop           Command = "stop"
	CommandQuit           Command = "quit"
	CommandToggleMaximize Command = "toggle-maximize"
	CommandMinimize       Command = "minimize"
	CommandClose          Command = "close"
	CommandAbout          Command = "about"
)

const (
	AboutTitle   = "About Local Browser"
	AboutMessage = "Local Web Browser v1.0.0"
	AboutDetail  = "Built with Wails"
)

// Item is a leaf of the menu tree. Separator items carry nothing else.
type Item struct {
	Label       string
	Accelerator string
	Command     Command
	Separator   bool
}

// Group is a top-level menu with its ordered items.
type Group struct {
	Label string
	Items []Item
}

// Spec is the ordered menu tree installed as the application menu.
type Spec []Group

// Template returns the fixed Browser / Window / Help menu.
func Template() Spec {
	return Spec{
		{
			Label: "Browser",
			Items: []Item{
				{Label: "Open URL", Accelerator: "Ctrl+O", Command: CommandOpenURL},
				{Label: "Forward", Accelerator: "Ctrl+Right", Command: CommandForward},
				{Label: "Back", Accelerator: "Ctrl+Left", Command: CommandBack},
				{Label: "Reload", Accelerator: "Ctrl+R", Command: CommandReload},
				{Label: "Stop", Accelerator: "Esc", Command: CommandStop},
				{Separator: true},
				{Label: "Quit", Accelerator: "Ctrl+Q", Command: CommandQuit},
			},
		},
		{
			Label: "Window",
			Items: []Item{
				{Label: "Maximize", Accelerator: "F11", Command: CommandToggleMaximize},
				{Label: "Minimize", Accelerator: "Ctrl+M", Command: CommandMinimize},
				{Label: "Close", Accelerator: "Ctrl+W", Command: CommandClose},
			},
		},
		{
			Label: "Help",
			Items: []Item{
				{Label: "About", Command: CommandAbout},
			},
		},
	}
}

// Find returns the first item bound to accelerator.
func (s Spec) Find(accelerator string) (Item, bool) {
	for _, group := range s {
		for _, item := range group.Items {
			if !item.Separator && item.Accelerator == accelerator {
				return item, true
			}
		}
	}
	return Item{}, false
}

// Commands lists every command in menu order.
func (s Spec) Commands() []Command {
	var out []Command
	for _, group := range s {
		for _, item := range group.Items {
			if !item.Separator {
				out = append(out, item.Command)
			}
		}
	}
	return out
}
