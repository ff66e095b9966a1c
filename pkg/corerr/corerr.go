// Package corerr defines the error taxonomy shared by every actor in the
// control plane. It is a leaf package with no internal dependencies, meant
// to be imported by nodeid, registry, pipeline, bus, navigator, scanner and
// engine without causing import cycles.
package corerr

import "fmt"

// Code represents the classification of a CoreError.
type Code int

const (
	// Io is the fallback classification for I/O errors not matched below.
	Io Code = iota + 1

	// NotFound indicates the path does not exist.
	NotFound

	// PermissionDenied indicates the OS denied access to the path.
	PermissionDenied

	// InvalidPath indicates the path string could not be canonicalized.
	InvalidPath

	// NetworkError indicates a remote provider's transport failed.
	NetworkError

	// InvalidData indicates a provider returned malformed data.
	InvalidData

	// InvalidInput indicates a command carried an invalid argument.
	InvalidInput

	// ChannelClosed indicates publish was attempted on an unregistered
	// message type.
	ChannelClosed

	// ChannelError indicates a bounded channel's queue is closed.
	ChannelError

	// Cancelled indicates cooperative cancellation was observed.
	Cancelled

	// ActorError indicates an actor-internal invariant violation.
	ActorError
)

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case Io:
		return "Io"
	case NotFound:
		return "NotFound"
	case PermissionDenied:
		return "PermissionDenied"
	case InvalidPath:
		return "InvalidPath"
	case NetworkError:
		return "NetworkError"
	case InvalidData:
		return "InvalidData"
	case InvalidInput:
		return "InvalidInput"
	case ChannelClosed:
		return "ChannelClosed"
	case ChannelError:
		return "ChannelError"
	case Cancelled:
		return "Cancelled"
	case ActorError:
		return "ActorError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// CoreError is the error type carried across every actor boundary. It
// always carries enough context to render a human-readable line, per the
// taxonomy's contract.
type CoreError struct {
	Code    Code
	Message string
	Path    string // set for Io/NotFound/PermissionDenied/InvalidPath
	Actor   string // set for ActorError
	Detail  string // set for ChannelError
}

// Error implements the error interface.
func (e *CoreError) Error() string {
	switch {
	case e.Actor != "":
		return fmt.Sprintf("%s: %s (actor: %s)", e.Code, e.Message, e.Actor)
	case e.Path != "":
		return fmt.Sprintf("%s: %s (path: %s)", e.Code, e.Message, e.Path)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func NewIoError(path, message string) *CoreError {
	return &CoreError{Code: Io, Message: message, Path: path}
}

func NewNotFoundError(path string) *CoreError {
	return &CoreError{Code: NotFound, Message: "not found", Path: path}
}

func NewPermissionDeniedError(path string) *CoreError {
	return &CoreError{Code: PermissionDenied, Message: "permission denied", Path: path}
}

func NewInvalidPathError(path string) *CoreError {
	return &CoreError{Code: InvalidPath, Message: "invalid path", Path: path}
}

func NewNetworkError(message string) *CoreError {
	return &CoreError{Code: NetworkError, Message: message}
}

func NewInvalidDataError(message string) *CoreError {
	return &CoreError{Code: InvalidData, Message: message}
}

func NewInvalidInputError(message string) *CoreError {
	return &CoreError{Code: InvalidInput, Message: message}
}

func NewChannelClosedError() *CoreError {
	return &CoreError{Code: ChannelClosed, Message: "no channel registered for message type"}
}

func NewChannelError(detail string) *CoreError {
	return &CoreError{Code: ChannelError, Message: "channel queue closed", Detail: detail}
}

func NewCancelledError() *CoreError {
	return &CoreError{Code: Cancelled, Message: "operation cancelled"}
}

func NewActorError(actor, message string) *CoreError {
	return &CoreError{Code: ActorError, Message: message, Actor: actor}
}

// FromOSError classifies a standard-library I/O error into a CoreError,
// matching the OS error kind where one of os.IsNotExist/os.IsPermission
// applies and falling back to Io otherwise. Callers pass the raw error
// alongside the path the operation was attempted against.
func FromOSError(path string, err error) *CoreError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CoreError); ok {
		return ce
	}
	switch {
	case isNotExist(err):
		return NewNotFoundError(path)
	case isPermission(err):
		return NewPermissionDeniedError(path)
	default:
		return NewIoError(path, err.Error())
	}
}

// IsNotFound reports whether err classifies as NotFound.
func IsNotFound(err error) bool {
	ce, ok := err.(*CoreError)
	return ok && ce.Code == NotFound
}

// IsCancelled reports whether err classifies as Cancelled.
func IsCancelled(err error) bool {
	ce, ok := err.(*CoreError)
	return ok && ce.Code == Cancelled
}
