// Package cli turns command-line arguments into an app.Config. Flag
// defaults may come from a .env file in the working directory, which CI
// setups use to pin paths without repeating them on every invocation.
package cli
