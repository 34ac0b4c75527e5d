// doc.go - NewHope godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package newhope implements the NewHope IND-CCA2-secure key encapsulation
// mechanism (KEM), based on the hardness of the ring learning-with-errors
// (RLWE) problem, as submitted to the NIST Post-Quantum Cryptography
// project.
//
// A CPA-secure public-key encryption primitive (pke.go) is lifted to a
// CCA-secure KEM (kem.go) via the Fujisaki-Okamoto transform; a separate
// CPA-secure KEM (kemcpa.go) is also exposed directly for callers that
// have already arranged their own transport-level authentication and
// replay protection.
//
// For more information, see https://newhopecrypto.org/.
package newhope
