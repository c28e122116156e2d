// Package fs builds Cloud Firestore clients from ambient configuration.
//
// It mirrors package gcd: FIRESTORE_PROJECT_ID, GOOGLE_CLOUD_PROJECT or
// GCLOUD_PROJECT name the project, FIRESTORE_EMULATOR_HOST selects an emulator
// and Application Default Credentials supply the project otherwise.
package fs
