// Package users defines the user record shown by the listing and decodes the
// record set delivered by the remote user API.
//
// The remote payload is a JSON array of objects carrying at least a numeric
// "id", a string "name" and a string "email". Every other field is ignored.
// The payload carries no role, so every decoded record is assigned a role
// label supplied by the caller (DefaultRole unless configured otherwise).
package users
