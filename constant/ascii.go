package constant

// AsciiArtLogo is the application banner shown in the root command help.
const AsciiArtLogo = `
             _               _
   __ _   __| | _ __   ___  | |
  / _' | / _' || '__| / _ \ | |
 | (_| || (_| || |   |  __/ | |
  \__,_| \__,_||_|    \___| |_|`
