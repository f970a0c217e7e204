// Package size parses and formats human-readable byte counts such as
// "512", "16K", "2M" and "1G".
//
// Units are binary multiples: k is 1024, m is 1024² and g is 1024³.
// Unit letters are case-insensitive.
package size
