package api

// Version is the application version reported by the health endpoint and
// the OpenAPI document.
const Version = "1.0.0"
