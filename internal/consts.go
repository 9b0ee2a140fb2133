package internal

const PageSize = 30
