package mcpserver

// ConfigFormatURI identifies the settings-format resource.
const ConfigFormatURI = "coderecents://config-format"

// ConfigFormat describes the settings document read from the config
// directory, for MCP clients that help users edit it.
const ConfigFormat = `# coderecents settings

The plugin reads the first of ` + "`vscode.yaml`" + `, ` + "`vscode.yml`" + ` or ` + "`vscode.toml`" + `
found in its config directory. Every key is optional.

## Keys

| key          | default                                   | meaning |
|--------------|-------------------------------------------|---------|
| prefix       | unset                                     | queries must start with it; it is removed before matching |
| command      | code                                      | editor command; the project path is appended |
| icon         | com.visualstudio.code                     | icon name attached to every match |
| workspace    | ~/.config/Code/User/workspaceStorage      | editor workspace-storage directory (~ and $VAR are expanded) |
| label        | VSCode                                    | match title is "<label>: <project>" |
| match        | substring                                 | substring, distance or fuzzy |
| quote_path   | false                                     | shell-quote the project path when launching |

On macOS the default workspace is ` + "`~/Library/Application Support/Code/User/workspaceStorage`" + `,
on Windows ` + "`~/AppData/Roaming/Code/User/workspaceStorage`" + `.

## Rules

1. Values are taken literally. Only ` + "`workspace`" + ` expands ` + "`$VAR`" + ` references and a leading ` + "`~`" + `.
   A ` + "`vscode.ron`" + ` file is not read; move its settings to ` + "`vscode.yaml`" + `.
2. A file that cannot be parsed, or holds an empty ` + "`command`" + `, ` + "`icon`" + `, ` + "`workspace`" + `
   or ` + "`label`" + `, or an unknown ` + "`match`" + `, is ignored entirely: all defaults apply.
3. The launch runs ` + "`sh -c \"<command> <path>\"`" + `. Without ` + "`quote_path`" + ` shell
   metacharacters in the path are interpreted by the shell.

## Example

` + "```" + `yaml
prefix: ":code "
command: code --reuse-window
match: distance
` + "```" + `
`
