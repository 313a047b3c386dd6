// Code generated by MockGen. DO NOT EDIT.
// Source: message.go
//
// Generated by this command:
//
//	mockgen -source=message.go -destination=../mocks/mock_message_log.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks
