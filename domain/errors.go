package domain

import (
	"errors"
	"fmt"
)

var ErrMessageNotFound = errors.New("message not found")

// One error type per pipeline step. The first failing step aborts the pipeline,
// so at most one of these is ever produced per request.

type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("text generation failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

type SynthesisError struct {
	Cause error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("speech synthesis failed: %v", e.Cause)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}

type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("audio upload failed: %v", e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

type PersistenceError struct {
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("record persistence failed: %v", e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

type RequestError struct {
	Cause error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %v", e.Cause)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}
