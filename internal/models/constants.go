// Package models contains wire types and constants for the ChatSafe local API.
package models

// BaseURL is the fixed address of the local ChatSafe server.
// The endpoint is not configurable at runtime; tests override it
// through the api client's WithBaseURL option.
const BaseURL = "http://127.0.0.1:8081"

// API paths served by the ChatSafe server
const (
	PathChatCompletions = "/v1/chat/completions"
	PathHealth          = "/health"
	PathModels          = "/models"
	PathVersion         = "/version"
)

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// NoResponseFallback is printed when a success payload carries no
// choices[0].message.content path.
const NoResponseFallback = "No response"
