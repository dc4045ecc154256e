package argy

const zshCompletionTemplate = `#compdef %[1]s

_%[1]s() {
    local -a spaced unspaced
    spaced=(%[2]s)
    unspaced=(%[3]s)

    compadd -a spaced
    # Values follow '=' directly, so no trailing space
    compadd -S '' -a unspaced
}

compdef _%[1]s %[1]s
`
