// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	CompilerNotFoundId Id = iota + 1
	NotAModuleId
	InvalidNameId
	IncompatibleVersionId
	ConfigLoadFailedId
	DirectoryNotEmptyId
	AnalysisExistsId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links to documentation about this issue
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	compilerNotFoundIssue = &Issue{
		id: CompilerNotFoundId,
		mdMsg: `
# jamovi compiler not found!

We couldn't find the jamovi compiler (jmc) on your system.

## Things you can try:
- Install the jamovi compiler:
~~~
$ npm install -g jamovi-compiler
~~~

- Or point jmvdev at an existing installation:
~~~
$ jmvdev check --compiler /path/to/jmc
~~~

- Or set it permanently in your config file:
~~~yaml
compiler: /path/to/jmc
~~~`,
		docLinks: []HttpLink{
			"https://dev.jamovi.org",
		},
	}

	notAModuleIssue = &Issue{
		id: NotAModuleId,
		mdMsg: `
# Not a jamovi module!

The target directory doesn't contain a DESCRIPTION file, so it doesn't
look like a jamovi module.

## Things you can try:
- Scaffold a fresh module first:
~~~
$ jmvdev create MyModule
~~~

- Or run the command from inside an existing module directory`,
	}

	invalidNameIssue = &Issue{
		id: InvalidNameId,
		mdMsg: `
# Invalid name!

Module and analysis names must start with a letter, be at least two
characters long, and contain only letters and digits.

## Examples of valid names:
- ` + "`MyModule`" + `
- ` + "`linReg`" + `
- ` + "`ttestIS`",
	}

	incompatibleVersionIssue = &Issue{
		id: IncompatibleVersionId,
		mdMsg: `
# Incompatible jamovi version!

This module declares a minimum jamovi version (minApp) that is newer than
the jamovi installation found on this system.

## Things you can try:
- Update your jamovi installation
- Lower the minApp declaration in the module manifest if the module
  doesn't actually need the newer version`,
		docLinks: []HttpLink{
			"https://www.jamovi.org/download.html",
		},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

The jmvdev config file exists but could not be read or parsed.

## Things you can try:
- Check the file for YAML syntax errors
- Run with defaults by moving the file aside:
~~~
$ mv ~/.config/jmvdev/config.yaml ~/.config/jmvdev/config.yaml.bak
~~~`,
	}

	directoryNotEmptyIssue = &Issue{
		id: DirectoryNotEmptyId,
		mdMsg: `
# Directory not empty!

The target module directory already exists and contains files. jmvdev
refuses to scaffold over existing content.

## Things you can try:
- Pick a different module path
- Remove the existing directory contents first`,
	}

	analysisExistsIssue = &Issue{
		id: AnalysisExistsId,
		mdMsg: `
# Analysis already exists!

An analysis with this name already has manifest files in the module's
jamovi directory. Nothing was overwritten.

## Things you can try:
- Pick a different analysis name
- Edit the existing analysis manifests instead`,
	}

	issues = map[Id]*Issue{
		compilerNotFoundIssue.Id():    compilerNotFoundIssue,
		notAModuleIssue.Id():          notAModuleIssue,
		invalidNameIssue.Id():         invalidNameIssue,
		incompatibleVersionIssue.Id(): incompatibleVersionIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		directoryNotEmptyIssue.Id():   directoryNotEmptyIssue,
		analysisExistsIssue.Id():      analysisExistsIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
