package atom

import (
	"sort"
	"sync"

	"github.com/derekparker/trie"
)

// CommandClass tells how the parser treats a command.
type CommandClass int8

const (
	SymbolCmd    CommandClass = iota // a bare symbol, e.g. \alpha
	AccentCmd                        // an accent taking one argument
	SpaceCmd                         // explicit space
	StructureCmd                     // a command building a compound atom, e.g. \frac
)

// Command describes a control sequence known to the parser.
type Command struct {
	Name  string
	Class CommandClass
	Text  string // glyph(s) of symbols and accents
	Kind  Kind
	Fonts []string
	Flags Flags
	Mu    int // for SpaceCmd
	Arity int // for StructureCmd
}

// NewSymbol creates a symbol atom for a command of class SymbolCmd.
func (c *Command) NewSymbol() *Symbol {
	return &Symbol{
		Class:  c.Kind,
		Text:   c.Text,
		Fonts:  append([]string(nil), c.Fonts...),
		Flags:  c.Flags,
		Source: `\` + c.Name,
	}
}

var (
	mainFont   = []string{MainRegular}
	italicFont = []string{MathItalic}
	largeFonts = []string{Size1, Size2}
)

var commandTable = []Command{
	// lowercase Greek
	{Name: "alpha", Text: "α"}, {Name: "beta", Text: "β"}, {Name: "gamma", Text: "γ"},
	{Name: "delta", Text: "δ"}, {Name: "epsilon", Text: "ε"}, {Name: "zeta", Text: "ζ"},
	{Name: "eta", Text: "η"}, {Name: "theta", Text: "θ"}, {Name: "iota", Text: "ι"},
	{Name: "kappa", Text: "κ"}, {Name: "lambda", Text: "λ"}, {Name: "mu", Text: "μ"},
	{Name: "nu", Text: "ν"}, {Name: "xi", Text: "ξ"}, {Name: "pi", Text: "π"},
	{Name: "rho", Text: "ρ"}, {Name: "sigma", Text: "σ"}, {Name: "tau", Text: "τ"},
	{Name: "upsilon", Text: "υ"}, {Name: "phi", Text: "φ"}, {Name: "chi", Text: "χ"},
	{Name: "psi", Text: "ψ"}, {Name: "omega", Text: "ω"},
	// uppercase Greek
	{Name: "Gamma", Text: "Γ", Fonts: mainFont}, {Name: "Delta", Text: "Δ", Fonts: mainFont},
	{Name: "Theta", Text: "Θ", Fonts: mainFont}, {Name: "Lambda", Text: "Λ", Fonts: mainFont},
	{Name: "Xi", Text: "Ξ", Fonts: mainFont}, {Name: "Pi", Text: "Π", Fonts: mainFont},
	{Name: "Sigma", Text: "Σ", Fonts: mainFont}, {Name: "Upsilon", Text: "Υ", Fonts: mainFont},
	{Name: "Phi", Text: "Φ", Fonts: mainFont}, {Name: "Psi", Text: "Ψ", Fonts: mainFont},
	{Name: "Omega", Text: "Ω", Fonts: mainFont},
	// ordinary symbols
	{Name: "infty", Text: "∞", Fonts: mainFont}, {Name: "partial", Text: "∂", Fonts: mainFont},
	{Name: "nabla", Text: "∇", Fonts: mainFont}, {Name: "forall", Text: "∀", Fonts: mainFont},
	{Name: "exists", Text: "∃", Fonts: mainFont}, {Name: "ldots", Text: "…", Fonts: mainFont},
	{Name: "cdots", Text: "⋯", Fonts: mainFont, Kind: Inner},
	{Name: "|", Text: "‖", Fonts: mainFont},
	{Name: "%", Text: "%", Fonts: mainFont}, {Name: "$", Text: "$", Fonts: mainFont},
	{Name: "&", Text: "&", Fonts: mainFont}, {Name: "#", Text: "#", Fonts: mainFont},
	{Name: "_", Text: "_", Fonts: mainFont},
	{Name: "{", Text: "{", Fonts: mainFont, Kind: Open}, {Name: "}", Text: "}", Fonts: mainFont, Kind: Close},
	{Name: "langle", Text: "⟨", Fonts: mainFont, Kind: Open}, {Name: "rangle", Text: "⟩", Fonts: mainFont, Kind: Close},
	{Name: "lfloor", Text: "⌊", Fonts: mainFont, Kind: Open}, {Name: "rfloor", Text: "⌋", Fonts: mainFont, Kind: Close},
	{Name: "lceil", Text: "⌈", Fonts: mainFont, Kind: Open}, {Name: "rceil", Text: "⌉", Fonts: mainFont, Kind: Close},
	// binary operators
	{Name: "pm", Text: "±", Fonts: mainFont, Kind: Bin}, {Name: "times", Text: "×", Fonts: mainFont, Kind: Bin},
	{Name: "div", Text: "÷", Fonts: mainFont, Kind: Bin}, {Name: "cdot", Text: "⋅", Fonts: mainFont, Kind: Bin},
	{Name: "cup", Text: "∪", Fonts: mainFont, Kind: Bin}, {Name: "cap", Text: "∩", Fonts: mainFont, Kind: Bin},
	// relations
	{Name: "leq", Text: "≤", Fonts: mainFont, Kind: Rel}, {Name: "geq", Text: "≥", Fonts: mainFont, Kind: Rel},
	{Name: "neq", Text: "≠", Fonts: mainFont, Kind: Rel}, {Name: "approx", Text: "≈", Fonts: mainFont, Kind: Rel},
	{Name: "equiv", Text: "≡", Fonts: mainFont, Kind: Rel}, {Name: "to", Text: "→", Fonts: mainFont, Kind: Rel},
	{Name: "rightarrow", Text: "→", Fonts: mainFont, Kind: Rel}, {Name: "leftarrow", Text: "←", Fonts: mainFont, Kind: Rel},
	{Name: "Rightarrow", Text: "⇒", Fonts: mainFont, Kind: Rel}, {Name: "in", Text: "∈", Fonts: mainFont, Kind: Rel},
	{Name: "notin", Text: "∉", Fonts: mainFont, Kind: Rel}, {Name: "subset", Text: "⊂", Fonts: mainFont, Kind: Rel},
	{Name: "subseteq", Text: "⊆", Fonts: mainFont, Kind: Rel}, {Name: "mid", Text: "∣", Fonts: mainFont, Kind: Rel},
	{Name: "parallel", Text: "∥", Fonts: mainFont, Kind: Rel},
	// large operators
	{Name: "sum", Text: "∑", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "prod", Text: "∏", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "coprod", Text: "∐", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "bigcup", Text: "⋃", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "bigcap", Text: "⋂", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "bigoplus", Text: "⨁", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "bigotimes", Text: "⨂", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "bigvee", Text: "⋁", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "bigwedge", Text: "⋀", Fonts: largeFonts, Kind: Op, Flags: Limits},
	{Name: "int", Text: "∫", Fonts: largeFonts, Kind: Op},
	{Name: "oint", Text: "∮", Fonts: largeFonts, Kind: Op},
	// operator names
	{Name: "sin", Text: "sin", Fonts: mainFont, Kind: Op, Flags: Composite},
	{Name: "cos", Text: "cos", Fonts: mainFont, Kind: Op, Flags: Composite},
	{Name: "tan", Text: "tan", Fonts: mainFont, Kind: Op, Flags: Composite},
	{Name: "log", Text: "log", Fonts: mainFont, Kind: Op, Flags: Composite},
	{Name: "ln", Text: "ln", Fonts: mainFont, Kind: Op, Flags: Composite},
	{Name: "exp", Text: "exp", Fonts: mainFont, Kind: Op, Flags: Composite},
	{Name: "lim", Text: "lim", Fonts: mainFont, Kind: Op, Flags: Composite | Limits},
	{Name: "max", Text: "max", Fonts: mainFont, Kind: Op, Flags: Composite | Limits},
	{Name: "min", Text: "min", Fonts: mainFont, Kind: Op, Flags: Composite | Limits},
	{Name: "det", Text: "det", Fonts: mainFont, Kind: Op, Flags: Composite | Limits},
	// accents
	{Name: "hat", Class: AccentCmd, Text: "^", Fonts: mainFont},
	{Name: "tilde", Class: AccentCmd, Text: "~", Fonts: mainFont},
	// spaces
	{Name: ",", Class: SpaceCmd, Mu: 3}, {Name: ":", Class: SpaceCmd, Mu: 4},
	{Name: ";", Class: SpaceCmd, Mu: 5}, {Name: "!", Class: SpaceCmd, Mu: -3},
	{Name: "quad", Class: SpaceCmd, Mu: 18}, {Name: "qquad", Class: SpaceCmd, Mu: 36},
	// structure
	{Name: "frac", Class: StructureCmd, Arity: 2}, {Name: "sqrt", Class: StructureCmd, Arity: 1},
	{Name: "overline", Class: StructureCmd, Arity: 1}, {Name: "text", Class: StructureCmd, Arity: 1},
	{Name: "mathbf", Class: StructureCmd, Arity: 1}, {Name: "mathrm", Class: StructureCmd, Arity: 1},
	{Name: "rule", Class: StructureCmd, Arity: 2}, {Name: "ref", Class: StructureCmd, Arity: 1},
}

var commandsOnce sync.Once
var commands *trie.Trie

func commandTrie() *trie.Trie {
	commandsOnce.Do(func() {
		commands = trie.New()
		for i := range commandTable {
			cmd := &commandTable[i]
			if cmd.Class == SymbolCmd && cmd.Fonts == nil {
				cmd.Fonts = italicFont
				cmd.Flags |= Italic
			}
			commands.Add(cmd.Name, cmd)
		}
		tracer().Debugf("command table holds %d commands", len(commandTable))
	})
	return commands
}

// LookupCommand finds a command by name (without the backslash).
func LookupCommand(name string) (*Command, bool) {
	if name == "" {
		return nil, false
	}
	node, ok := commandTrie().Find(name)
	if !ok {
		return nil, false
	}
	cmd, ok := node.Meta().(*Command)
	return cmd, ok
}

// Suggest returns up to n known command names resembling name.
func Suggest(name string, n int) []string {
	if name == "" || n <= 0 {
		return nil
	}
	t := commandTrie()
	candidates := t.FuzzySearch(name)
	for k := len(name) - 1; len(candidates) == 0 && k > 0; k-- {
		candidates = t.PrefixSearch(name[:k])
	}
	sort.Strings(candidates)
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// --- Delimiters ------------------------------------------------------------

var delimiterSources = map[string]rune{
	"(": '(', ")": ')', "[": '[', "]": ']', "|": '|', "/": '/', ".": 0,
	`\{`: '{', `\}`: '}', `\|`: '‖',
	`\langle`: '⟨', `\rangle`: '⟩', `\lfloor`: '⌊', `\rfloor`: '⌋', `\lceil`: '⌈', `\rceil`: '⌉',
}

// Delimiter maps the source spelling of a delimiter, e.g. `\{`, to its
// character. The null delimiter “.” maps to 0.
func Delimiter(src string) (rune, bool) {
	r, ok := delimiterSources[src]
	return r, ok
}

// DelimiterSource is the inverse of Delimiter.
func DelimiterSource(r rune) string {
	for src, d := range delimiterSources {
		if d == r {
			return src
		}
	}
	return "."
}

// --- Environments ----------------------------------------------------------

type environment struct {
	left, right rune
	align       bool // separate equations at '&', with relation spacing
	display     bool // starts display math from text mode
	tabular     bool
}

var environments = map[string]environment{
	"matrix":    {tabular: true},
	"pmatrix":   {left: '(', right: ')', tabular: true},
	"bmatrix":   {left: '[', right: ']', tabular: true},
	"Bmatrix":   {left: '{', right: '}', tabular: true},
	"vmatrix":   {left: '|', right: '|', tabular: true},
	"Vmatrix":   {left: '‖', right: '‖', tabular: true},
	"cases":     {left: '{', tabular: true},
	"aligned":   {align: true, tabular: true},
	"align":     {align: true, display: true, tabular: true},
	"align*":    {align: true, display: true, tabular: true},
	"equation":  {display: true},
	"equation*": {display: true},
}

// IsEnvironment checks if name is a supported environment.
func IsEnvironment(name string) bool {
	_, ok := environments[name]
	return ok
}

// IsTabular checks if an environment consists of rows and cells.
func IsTabular(name string) bool {
	return environments[name].tabular
}

// IsAlignEnv checks if an environment aligns equations.
func IsAlignEnv(name string) bool {
	return environments[name].align
}

// IsDisplayEnv checks if an environment starts display math from text mode.
func IsDisplayEnv(name string) bool {
	return environments[name].display
}

// EnvDelimiters returns the delimiters enclosing an environment, 0 for none.
func EnvDelimiters(name string) (rune, rune) {
	env := environments[name]
	return env.left, env.right
}
