package log

import "go.uber.org/zap"

/**
* Basically, redefine [zap]'s methods to require an argument
* of the [LogObject] type, then inline it.
 */

func (s Logger) Debug(msg string, logObject LogObject) {
	s.GetInternal().Debugw(msg, zap.Inline(logObject))
}

func (s Logger) Info(msg string, logObject LogObject) {
	s.GetInternal().Infow(msg, zap.Inline(logObject))
}

func (s Logger) Warn(msg string, logObject LogObject) {
	s.GetInternal().Warnw(msg, zap.Inline(logObject))
}

func (s Logger) Error(msg string, logObject LogObject) {
	s.GetInternal().Errorw(msg, zap.Inline(logObject))
}

// The logger calls [os.Exit] after sending the message.
func (s Logger) Fatal(msg string, logObject LogObject) {
	s.GetInternal().Fatalw(msg, zap.Inline(logObject))
}
