package cmd

import (
	"fmt"
	"strings"
)

// extractOption extracts the given `-name=value` option,
// borrows from https://github.com/hashicorp/terraform/blob/ee58ac1851c8a433005df9863ed47796a9f6b5e7/main.go#L431-L475.
func extractOption(args []string, argName string) (string, []string, error) {
	if len(args) == 0 {
		return "", args, nil
	}

	argPrefix := argName + "="

	var (
		argPos   int
		argValue string
	)

	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			// Options must come before the positional arguments.
			break
		}

		if arg == argName || arg == argPrefix {
			return "", args, fmt.Errorf("%s must include an equals sign followed by a value, like %sexample", argName, argPrefix)
		}

		if strings.HasPrefix(arg, argPrefix) {
			argPos = i
			argValue = arg[len(argPrefix):]
		}
	}

	if argValue == "" {
		return "", args, nil
	}

	if argPos == 0 {
		return argValue, args[1:], nil
	}

	newArgs := make([]string, len(args)-1)
	copy(newArgs, args[:argPos])
	copy(newArgs[argPos:], args[argPos+1:])

	return argValue, newArgs, nil
}
