package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

type LogObject struct {
	tag   LogTag
	error error
	data  []any
}

func L() LogObject {
	return LogObject{}
}

func (l LogObject) Tag(t LogTag) LogObject {
	l.tag = t
	return l
}

func (l LogObject) Error(e error) LogObject {
	l.error = e
	return l
}

func (l LogObject) Add(k string, v any) LogObject {
	// NOTE: append may share the backing array with the receiver's copy;
	// builders are meant to be used as one chain per log call.
	l.data = append(l.data, k, v)
	return l
}

func (l LogObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("tag", l.tag.String())

	if l.error != nil {
		enc.AddString("error", l.error.Error())
		enc.AddString("error_type", fmt.Sprintf("%T", l.error))
	}

	if len(l.data)%2 != 0 {
		enc.AddString(LogTagLogParsing.String(), "odd number of data elements, ignoring")
		return nil
	}
	for i := 0; i < len(l.data)-1; i += 2 {
		key, ok := l.data[i].(string)
		if !ok {
			enc.AddString(LogTagLogParsing.String(), fmt.Sprintf("non-string key %v", l.data[i]))
			continue
		}
		if err := enc.AddReflected(key, l.data[i+1]); err != nil {
			return err
		}
	}
	return nil
}
