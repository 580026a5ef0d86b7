package messages

import "strings"

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if strings.HasPrefix(text, "/") {
		if len(split) == commandParts {
			return split[0], split[1]
		}
		return text, ""
	}
	return "", text
}

// parseEntry splits a form argument into category, amount and the optional
// free-text note: "<category> <amount> [note...]".
func parseEntry(arg string) (category, amount, note string, ok bool) {
	args := strings.Fields(arg)
	if len(args) < commandParts {
		return "", "", "", false
	}
	return args[0], args[1], strings.Join(args[commandParts:], " "), true
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
