package cli

// Shared stage flags
var (
	flagRoot        string
	flagName        string
	flagList        string
	flagPlaceholder string
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagRoot != "" {
		m["root"] = flagRoot
	}
	if flagPlaceholder != "" {
		m["placeholder"] = flagPlaceholder
	}
	if flagList != "" {
		m["termsFile"] = flagList
	}
	return m
}
