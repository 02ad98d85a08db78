package log

type LogTag uint

// Logger event tag.
const (
	LogTagUnset LogTag = iota
	LogTagUnknown

	LogTagInit
	LogTagStore
	LogTagImport
	LogTagExport
	LogTagSource
	LogTagServer
	LogTagEditor
	LogTagLogParsing
)

var tagToString = map[LogTag]string{
	LogTagUnknown:    "log_tag_unknown",
	LogTagUnset:      "log_tag_unset",
	LogTagInit:       "init",
	LogTagStore:      "store",
	LogTagImport:     "import",
	LogTagExport:     "export",
	LogTagSource:     "source",
	LogTagServer:     "server",
	LogTagEditor:     "editor",
	LogTagLogParsing: "log_parsing",
}

// Implement [fmt.Stringer] interface.
func (e LogTag) String() string {
	if tag, ok := tagToString[e]; ok {
		return tag
	}
	return LogTagUnknown.String()
}
