// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides loom's standard CBOR encoding configuration.
//
// All wire traffic between the layout engine and the compositor goes
// through this package so the encoding options are defined once. The
// encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. Same
// logical message always produces identical bytes, which keeps tree
// comparison on the compositor side byte-stable. The decoder accepts
// standard CBOR and silently ignores unknown fields, so the engine can
// talk to newer compositors without a lockstep upgrade.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (the layout session socket):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
package codec
