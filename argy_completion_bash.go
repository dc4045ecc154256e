package argy

const bashCompletionTemplate = `# bash completion for %[1]s

_%[1]s_completions()
{
    local cur="${COMP_WORDS[COMP_CWORD]}"
    COMPREPLY=($(compgen -W "%[2]s" -- "$cur"))

    # Values follow '=' directly, so don't add a space after one
    if [[ ${#COMPREPLY[@]} -eq 1 && "${COMPREPLY[0]}" == *= ]]; then
        compopt -o nospace
    fi
}

complete -o default -F _%[1]s_completions %[1]s
`
