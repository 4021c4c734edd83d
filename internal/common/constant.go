package common

// Messages returned in GroupResponse.message and GenerateResponse.error.
// Clients compare against them, so they are part of the wire contract.
const (
	MsgGroupNotFound   = "Group not found"
	MsgNoPasswordSet   = "Group has no password set"
	MsgPasswordNeeded  = "Password required"
	MsgPasswordCorrect = "Password correct"
	MsgPasswordInvalid = "Invalid password"
)

// MinPhraseLength is the shortest group password phrase the service will issue.
const MinPhraseLength = 12

// DefaultGRPCPort is where the credential service listens unless configured otherwise.
const DefaultGRPCPort = "50051"
