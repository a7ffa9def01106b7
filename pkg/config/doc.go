// Package config loads and updates the gh-dispatch repository configuration.
//
// The configuration is a YAML file listing repositories, the branches offered
// for each, and saved bookmarks:
//
//	repos:
//	  - name: owner/repo
//	    branches: [main, develop]
//	    bookmarks:
//	      - nickname: deploy-staging
//	        workflow: Deploy
//	        branch: main
//	        inputs: {environment: staging}
//
// The file is the only persistent store. It is re-read on every access;
// nothing is cached between Load and SaveBookmark. SaveBookmark performs an
// unlocked read-modify-write, so two concurrent gh-dispatch processes can lose
// one of their bookmarks.
package config
