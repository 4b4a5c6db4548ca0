package main

import (
	"fmt"
	"os"
	"syscall"

	"mapsheet/geo"
)

const (
	EINVALID = 22
	EIO      = 5
)

const (
	GenericErrCode = 5000 + iota
	RangeErrCode
	DomainErrCode
	ReferenceErrCode
	ConvergenceErrCode
	FetchErrCode
)

type Error struct {
	Cause error
	Code  int
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func Exit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)

	code := EINVALID
	if e, ok := err.(*Error); ok {
		code = e.Code
	}
	os.Exit(code)
}

func badUsage(n string) error {
	e := Error{
		Cause: fmt.Errorf("%s", n),
		Code:  EINVALID,
	}
	return &e
}

func fetchError(err error) error {
	return &Error{
		Cause: err,
		Code:  FetchErrCode,
	}
}

func checkError(err, parent error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *Error:
		return e
	case geo.OutOfRangeError:
		return &Error{
			Cause: err,
			Code:  RangeErrCode,
		}
	case geo.OutOfDomainError:
		return &Error{
			Cause: err,
			Code:  DomainErrCode,
		}
	case geo.MalformedReferenceError:
		return &Error{
			Cause: err,
			Code:  ReferenceErrCode,
		}
	case geo.ConvergenceError:
		return &Error{
			Cause: err,
			Code:  ConvergenceErrCode,
		}
	case *os.PathError:
		return checkError(e.Err, err)
	case syscall.Errno:
		if parent != nil {
			err = parent
		}
		return &Error{Cause: err, Code: int(e)}
	default:
		return err
	}
}
