// Package pkgmgr maps a JavaScript package manager to the command prefixes
// used to drive it. Two invocations are kept apart on purpose: the plain
// command prefix runs the manager itself (install, run), while the init
// prefix fetches and runs a remote package such as the project generator.
package pkgmgr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/earlbalai/rn-blitz/internal/shell"
)

// PackageManager identifies a supported JavaScript package manager.
type PackageManager string

// Supported package managers.
const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// Default is selected when the user makes no choice.
const Default = NPM

// ErrUnknown is returned by Parse for values outside the supported set.
var ErrUnknown = errors.New("pkgmgr: unknown package manager")

// All returns the supported package managers in prompt order.
func All() []PackageManager {
	return []PackageManager{NPM, Yarn, PNPM, Bun}
}

// Names returns All as plain strings.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, pm := range all {
		names[i] = string(pm)
	}
	return names
}

// Parse validates s against the supported set. Matching is case-insensitive
// and ignores surrounding whitespace.
func Parse(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	switch pm {
	case NPM, Yarn, PNPM, Bun:
		return pm, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknown, s, strings.Join(Names(), ", "))
	}
}

// CommandPrefixFor returns the command used to invoke the package manager
// itself. Unknown values fall back to npm.
func CommandPrefixFor(name string) string {
	switch PackageManager(name) {
	case Yarn:
		return "yarn"
	case PNPM:
		return "pnpm"
	case Bun:
		return "bun"
	default:
		return "npm"
	}
}

// InitPrefixFor returns the command that fetches and runs a remote package.
// Unknown values fall back to npm's npx.
func InitPrefixFor(name string) string {
	switch PackageManager(name) {
	case Yarn:
		return "yarn dlx"
	case PNPM:
		return "pnpm dlx"
	case Bun:
		return "bunx"
	default:
		return "npx"
	}
}

// ExecPrefixFor returns the command that runs a binary installed in the
// project's node_modules. Unknown values fall back to npx.
func ExecPrefixFor(name string) string {
	switch PackageManager(name) {
	case Yarn:
		return "yarn"
	case PNPM:
		return "pnpm exec"
	case Bun:
		return "bunx"
	default:
		return "npx"
	}
}

// String implements fmt.Stringer.
func (p PackageManager) String() string {
	return string(p)
}

// CommandPrefix returns CommandPrefixFor(p).
func (p PackageManager) CommandPrefix() string {
	return CommandPrefixFor(string(p))
}

// InitPrefix returns InitPrefixFor(p).
func (p PackageManager) InitPrefix() string {
	return InitPrefixFor(string(p))
}

// ExecPrefix returns ExecPrefixFor(p).
func (p PackageManager) ExecPrefix() string {
	return ExecPrefixFor(string(p))
}

// InitCommand builds "<init-prefix> <pkg>@<version> init <project>".
func (p PackageManager) InitCommand(pkg, version, project string) shell.Command {
	spec := pkg
	if version != "" {
		spec = pkg + "@" + version
	}
	return prefixed(p.InitPrefix(), spec, "init", project)
}

// InstallCommand builds "<prefix> install [pkgs...]". Yarn has no
// "install <pkg>" form, so it uses "add" when packages are named.
func (p PackageManager) InstallCommand(pkgs ...string) shell.Command {
	verb := "install"
	if len(pkgs) > 0 && p == Yarn {
		verb = "add"
	}
	return prefixed(p.CommandPrefix(), append([]string{verb}, pkgs...)...)
}

// ExecCommand builds "<exec-prefix> <bin> [args...]".
func (p PackageManager) ExecCommand(bin string, args ...string) shell.Command {
	return prefixed(p.ExecPrefix(), append([]string{bin}, args...)...)
}

// RunScript returns the package.json script syntax "<pm> run <script>".
func (p PackageManager) RunScript(script string) string {
	return p.CommandPrefix() + " run " + script
}

// prefixed splits a possibly multi-word prefix into a Command.
func prefixed(prefix string, args ...string) shell.Command {
	fields := strings.Fields(prefix)
	return shell.Command{
		Name: fields[0],
		Args: append(fields[1:len(fields):len(fields)], args...),
	}
}
