package domain

// KeyPrefix namespaces all engine keys in the shared store. Overridden from
// config at startup, before any repository call.
var KeyPrefix = "matchengine:"
