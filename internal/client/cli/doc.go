// Package cli implements groupctl, the command-line front end of the
// credential service.
//
// Usage:
//
//	groupctl [global flags] check    -group NAME [-phrase PHRASE]
//	groupctl [global flags] generate -group NAME
//	groupctl [global flags] admin <command> -email ADMIN_EMAIL [flags]
//
// check and generate go through the credential client and its retry policy.
// Admin commands open the database named by -d directly and authenticate the
// administrator by email and a password read from the terminal.
//
// Admin commands:
//
//	user-create   -username U -user-email E -password P [-role admin|user]
//	user-list
//	user-update   -id ID -username U -user-email E -role R [-password P]
//	user-delete   -id ID
//	group-create  -name N [-description D]
//	group-list
//	group-update  -id ID -name N [-description D]
//	group-delete  -id ID
//	group-rotate  -id ID
//	group-clear   -id ID
//	member-assign -user ID -group ID
//	member-remove -id MEMBERSHIP_ID
//	member-get    -user ID
//	member-list   -group ID
package cli
