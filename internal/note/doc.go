// Package note implements value-hiding commitment notes for the confidential
// mint protocol.
//
// Overview:
//   - A Note commits to a value k with a dual-base commitment (gamma, sigma)
//     satisfying sigma = gamma^k * H^a for a secret blinding scalar a
//   - Viewing keys pack a note's private fields into a fixed 69-byte string
//   - The factory builds ordered commitment sets for lists of input and
//     output values, in a production mode and a trapdoor (test) mode
//
// Security Model:
//   - Production commitments are derived from the public setup point H only;
//     soundness rests on nobody knowing the setup trapdoor
//   - The fake-commitment path samples a local trapdoor per batch and is for
//     exercising proof logic in tests; it must not be wired into production
//   - All randomness comes from crypto/rand via rejection-sampled uniform
//     scalars
package note
